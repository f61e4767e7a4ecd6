// Package internal contains the SDL host for swipeview: window and renderer
// setup, input translation, theming and texture caching.
// Types and functions in this package are not part of the public API.
package internal
