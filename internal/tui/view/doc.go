// Package view provides the view components composed by the main pane
// container: the three leaf panes, the bottom navigation bar and the help bar.
//
// # Panes
//
// [HomePane], [NavigationPane] and [SettingsPane] implement [PaneView]. Each
// is built with the image width the container derived from the viewport at
// startup and renders placeholder frames of that width.
//
// # Navigation Bar
//
// [NavBar] renders one tab per pane and forwards selections (keys routed by
// the container, or mouse clicks on a tab) to the [SelectFunc] it was
// constructed with.
package view
