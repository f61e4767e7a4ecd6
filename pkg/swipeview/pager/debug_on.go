//go:build swipeviewdebug

package pager

const debugAssertions = true
