// Package sortpipe sorts every line of an integer file on a pool of workers.
//
// A pipeline reads its input line by line and puts each line on a blocking queue.
// A fixed number of workers take lines off the queue, parse them into integer
// sequences, sort them with the configured algorithm and append the result to a
// shared output file as a comma-separated line. Once the input is exhausted the
// queue is finished; workers drain what is left and exit, and Run returns.
//
// Output lines are not written in input order. Every input line yields exactly one
// output line, unless its processing panicked, and lines are never interleaved.
// Malformed tokens are dropped from a line; they never fail it.
//
// Defaults
//   - Threads: 4 (valid range 1..MaxThreads)
//   - Algorithm: insertion sort, ascending
//   - Delimiter: ' '
//   - Logger: discards everything
//   - Metrics: no-op provider
//
// Failure policy
//   - Configuration errors are returned by New before any file is touched.
//   - An unreadable input fails Run before any worker starts.
//   - A panic while processing one line is recovered, logged and counted; the
//     worker moves on to the next line.
//   - An output write failure stops every worker and is returned by Run.
//   - Canceling the context passed to Run finishes the queue and stops the workers
//     at their next line.
package sortpipe
