package queue

import "context"

// Router spreads jobs over the lanes of one stage.
type Router struct {
	lanes []*Lane
}

// NewRouter creates workers lanes of the given depth.
func NewRouter(workers, depth int) *Router {
	if workers < 1 {
		workers = 1
	}
	lanes := make([]*Lane, workers)
	for i := range lanes {
		lanes[i] = NewLane(i, depth)
	}
	return &Router{lanes: lanes}
}

// Lanes returns the router's lanes.
func (r *Router) Lanes() []*Lane {
	return r.lanes
}

// Pick returns the least loaded lane; ties go to the lowest index.
func (r *Router) Pick() *Lane {
	best := r.lanes[0]
	bestLoad := best.Load()
	for _, lane := range r.lanes[1:] {
		if load := lane.Load(); load < bestLoad {
			best, bestLoad = lane, load
		}
	}
	return best
}

// Dispatch pushes job to the least loaded lane.
func (r *Router) Dispatch(ctx context.Context, job *Job) error {
	return r.Pick().Push(ctx, job)
}

// Queued returns the total load across lanes.
func (r *Router) Queued() int64 {
	var total int64
	for _, lane := range r.lanes {
		total += lane.Load()
	}
	return total
}

// Close closes every lane.
func (r *Router) Close() {
	for _, lane := range r.lanes {
		lane.Close()
	}
}
