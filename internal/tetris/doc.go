// Package tetris implements the falling-block puzzle engine: the board, the
// seven tetromino kinds, the upcoming-piece queue and every movement,
// rotation, locking and line-clear rule.
//
// The engine is synchronous and owns no timers. Callers drive it with
// gravity ticks and input commands and decide when to lock, clear lines,
// check for game over and spawn the next piece:
//
//	if !e.MoveDown() {
//		e.Lock()
//		cleared := e.ClearLines()
//		if e.GameOver() {
//			return
//		}
//		e.Spawn()
//	}
//
// An Engine is not safe for concurrent use.
package tetris
