// Package devserver serves the danmu web front end during development.
//
// It forwards every request under the API prefix to the backend through a
// reverse proxy and serves the built single-page app for everything else,
// falling back to index.html so that client-side routes survive a reload.
package devserver
