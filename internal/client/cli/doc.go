// Package cli provides the interactive coursehub command-line client.
//
// It wires configuration, the local session database and the API services
// into a REPL. A session survives restarts: the token stored at login is
// restored on start and dropped on logout or when the server rejects it.
//
// Commands:
//   - register, login, logout, me
//   - courses, enroll <courseId> <title...>, unenroll <courseId>
//   - tutors, ratings
//   - help, exit
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
