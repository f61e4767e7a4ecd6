//go:build !swipeviewdebug

package pager

const debugAssertions = false
