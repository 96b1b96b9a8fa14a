// Package client assembles and runs the terminal client application.
package client
