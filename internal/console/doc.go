// Package console is the output port shared by the interactive components.
//
// A Console owns the writers and the input reader for one process run and
// renders the presentational pieces of the tool: bordered panels, coloured
// notices, progress spinners around network calls and the "press enter"
// pause. Components receive a *Console (or a narrower interface) explicitly,
// so tests can capture output by constructing one over a bytes.Buffer.
package console
