// Package format turns raw ECS API responses into the short identifiers and
// single-line display strings shown in the interactive menus.
//
// Everything in this package is pure: no I/O, no clock, no globals.
package format
