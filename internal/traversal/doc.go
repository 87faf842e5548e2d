// Package traversal records breadth-first and depth-first searches as
// step-by-step traces. Each [Step] owns its own copies of the visited list and
// the frontier, so any step of a finished trace can be inspected on its own.
package traversal
