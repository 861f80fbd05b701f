// Package notify shows error toasts to the user.
//
// [Terminal] renders each message as a bordered box on a writer (stderr by
// default) and mirrors it to the log. [Log] only logs, for processes that
// have no user in front of them.
package notify
