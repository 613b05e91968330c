// meta/meta.go
package meta

// ITERATIONS defines the MCTS budget per move in the interactive demo.
const ITERATIONS = 10000

// CONFIG_PATH is read when no -config flag is given and the file exists.
const CONFIG_PATH = "config.yml"
