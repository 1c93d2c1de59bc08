// Package site renders the NeuroScan Pro landing page with gomponents.
//
// The page is a fixed sequence of sections: navigation, hero, features,
// stats, demo and footer. Each section is a function returning a g.Node built
// from the static lists in package content. Nothing is fetched and nothing is
// stateful at render time except the decorative graph and the demo selection,
// which the caller passes in through PageData.
//
// Client-side behavior lives in the embedded script (see Script). The markup
// carries everything the script needs as data attributes:
//
//	data-counter-end, data-counter-duration  stats counters
//	data-demo-step, data-demo-panel         demo step selection
//	data-reveal                             one-shot entrance animations
package site
