// Package preflight provides readiness checks for the filesystem paths
// recipeflow writes to and reads from.
//
// These checks run in two contexts:
//   - The encode stage reports them through its HealthCheck so a run halts
//     before any document is decoded into an unwritable output tree.
//   - The CLI "recipeflow config validate" command prints every result.
//
// Optional paths are only checked when configured.
package preflight
