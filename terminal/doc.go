// Package terminal is the tcell shell around the game core.
//
// Features:
//   - Screen lifecycle with crash recovery that restores the terminal before printing
//   - Background event pump with per-tick draining; the last direction key wins
//   - Bordered board renderer, one terminal cell per tile, plus a status line
package terminal
