// Package game holds the entities used to model games on graphs: Actions that
// label transitions, and Kripke structures (a directed graph whose states are
// labelled with atomic propositions and which has a set of initial states).
//
// A Kripke embeds *core.Graph, so every graph query and mutation is available on
// it. Removing a state through the embedded graph also drops that state's labels
// and initial mark.
package game
