// Package cli implements the domainctl command line tool.
//
// Commands:
//
//	domainctl check <type> <value>...     prints valid or invalid per value
//	domainctl parse <type> <value> -o fmt  normalizes a value, fmt is text, json, xml or yaml
//	domainctl detect <number>             classifies a barcode as ISBN or EAN
//
// Rejected values are described with the i18n catalog in the language given
// by --lang.
package cli
