// Package app hosts the ebiten window that animates a beam simulation. It is
// only built with the 'ebiten' tag.
package app
