// Package model holds the battle domain types: creatures and their stat
// blocks, effects, traps, drops, players, and the hex cells the grid hands
// to the combat core.
package model
