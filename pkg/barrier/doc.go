// Package barrier provides a reusable cyclic barrier for a fixed number of
// parties. Once the full party has arrived, all waiters are released together
// and a new generation begins; the barrier can be reused indefinitely without
// reconstruction.
package barrier
