// Package config provides configuration management for okterm.
//
// Configuration is loaded and merged in the following order, later sources
// overriding earlier ones:
//
//  1. Built-in defaults
//  2. User configuration (~/.config/okterm/config.yaml)
//  3. Project configuration (./.okterm/config.yaml)
//  4. An explicit file passed with --config
//  5. Environment variables (OKTERM_PALETTE, OKTERM_GAMUT, OKTERM_LOG_FILE,
//     OKTERM_LOG_LEVEL, OKTERM_LOG_FORMAT), with values from ./.env used
//     when the variable is not set in the process environment
//
// Command-line flags are applied on top by the cli package.
//
// # Configuration Structure
//
//	palette: warm
//	gamut: chroma
//	metadata:
//	  name: okterm-warm
//	  author: me
//	  aliases: [warm]
//	overrides:
//	  red:
//	    c: 0.25
//	  bg-medium:
//	    l: 0.3
//	    c: 0.02
//	    h: 210
//	logging:
//	  file: /tmp/okterm.log
//	  level: debug
//	  format: json
//
// An override replaces only the components it names. Overriding a slot the
// palette does not define (a tint tier on a palette without tiers) requires
// all three of l, c and h.
package config
