// Package preview renders the landing page in the terminal.
//
// The preview is a bubbletea program that walks through the page one section
// at a time. It shares the build's content, decorative graph and counter
// animation, so what it shows matches the generated page:
//
//   - the hero graph is drawn onto a character canvas
//   - the stats counters start the first time the stats section is shown
//   - the demo walkthrough is driven by the same selector as the page script
//
// Frames are produced by tea.Tick at the display rate and flushed through an
// anim.FrameQueue, so counters run on the program's update loop.
package preview
