// Package ui contains the Bubble Tea program that powers the package browser.
// The package is structured so the Model type focuses on message orchestration,
// while dedicated helpers own input translation, rendering, and sync sessions.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - Key presses are first translated by Translate (internal/ui/input.go) into
//     semantic commands; the command's meaning then depends on the session
//     mode. Unmapped keys in search mode fall through to the text input widget.
//   - Non-key messages are routed through a typed handler registry so each
//     tea.Msg is handled by a focused function (window sizes, runner events,
//     package reloads).
//
// State ownership:
//   - The filtered list, cursor, viewport, and selection live in
//     internal/ui/state and know nothing about Bubble Tea.
//   - An active upgrade workflow is held in a syncSession, which owns the
//     subprocess runner and its accumulated output. At most one session exists
//     at a time, and only while the model is in ModeSyncing.
//
// Subprocess interaction:
//   - An upgrade.Runner streams subprocess output as events; waitForSyncEvent
//     receives one event per tea.Cmd and the handler re-arms the wait, so the
//     update loop stays responsive while pacman runs.
//   - When the user backs out of a running sync, the runner is stopped and its
//     remaining events are dropped. Backing out of a finished sync triggers an
//     asynchronous package table reload.
//
// This separation keeps Model.Update compact and makes it easy to test the
// translator, the list state, and the full session state machine in isolation.
package ui
