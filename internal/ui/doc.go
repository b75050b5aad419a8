// Package ui contains the Bubble Tea program that drives the achievement
// manager. The Model type focuses on message orchestration while dedicated
// helpers own navigation, text input and rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (key presses, window resizes).
//   - Key presses are dispatched by mode. Browsing keys (navigation.go) call
//     into the selection model in internal/ui/state; the app id prompt and the
//     incremental search prompt (input.go) keep text entry out of the list
//     handling.
//
// State ownership:
//   - The rows, cursor, viewport and status line of the loaded application
//     live in internal/ui/state.List. The sort preference is held by the Model
//     so it survives switching to another application.
//
// Backend interactions:
//   - Loading an application and committing a delta both run synchronously
//     inside Update. Enter hands the list to internal/diff, which calls the
//     catalog once per non-empty partition and folds the results back into
//     the list before the next frame is drawn. The model never schedules
//     ticks or background commands.
package ui
