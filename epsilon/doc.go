// Package epsilon builds the ε-neighbourhood (Laplacian-like) similarity
// matrix that feeds the Jacobi eigensolver.
//
// For every source node it runs a budget-bounded breadth-first traversal:
// starting with a remaining distance (or hop) budget of ε, it visits every
// node reachable without the budget going negative, marks each visited
// off-diagonal cell with -1, and records the count of distinct reached
// nodes (excluding the source) on the diagonal. Traversal order is
// intentionally not shortest-path: once a node is popped off the queue it
// is marked visited for good, even if a later, cheaper path to it was
// still sitting in the queue. That is a documented lower bound on
// reachability, not a bug — see Build's doc comment.
//
// Sources are independent, so Build partitions them across a pool of
// workers, each with its own reusable queue and visited-set; rows of the
// output matrix are disjoint, so workers never contend for a lock.
package epsilon
