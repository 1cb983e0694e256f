// Package shell generates the shell command sequences that pyctx emits for
// the invoking shell to eval. A child process cannot change its parent's
// working directory or environment, so activation is expressed as emitted
// script text: stdout is the wire format, and the workon wrapper function
// (see HookSnippet) evals it inside the user's session.
package shell
