// Package restaurant holds the Restaurant aggregate of the restaurant directory.
package restaurant
