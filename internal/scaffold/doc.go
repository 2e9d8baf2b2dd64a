// Package scaffold creates the on-disk skeleton of a new web project: the
// assets directory with css, js and img sub-directories, and empty style.css
// and script.js placeholders. Every target is attempted independently and
// reported as its own Outcome, so one failure never hides the others.
package scaffold
