// Package scaffold turns a stored web-app template into a runnable project
// directory. It powers the "skillforge webapp new" command: extract, retitle,
// copy, then overlay cached dependencies or resolve them fresh.
package scaffold
