// Package philo simulates the dining philosophers problem.
//
// A fixed ring of philosophers cyclically think, get admitted to the table,
// pick up the two forks next to them, eat, and put the forks back.  The table
// guarantees that a fork is never held by two philosophers, that neighbours
// never eat at the same time and that at most N-1 philosophers are hungry or
// eating at once, which rules out the all-grab-one-fork deadlock.
//
// The root package exposes a high-level Service façade:
//
//	srv, err := philo.New(philo.WithOutput(os.Stdout))
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = srv.Run(ctx) // returns once ctx is done
//
// See runtime/table for the synchronization protocol.
package philo
