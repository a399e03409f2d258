// Package internal contains the infrastructure shared by the nativemenu
// packages: logging, theme colours, geometry, the LRU cache, the built-in
// sprite rasteriser, localisation and controller button repeat.
// Types and functions in this package are not part of the public API.
package internal
