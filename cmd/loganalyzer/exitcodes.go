package main

// Process exit codes. 0 is success.
//
//	2  configuration could not be loaded or is invalid, or the report is unknown
//	3  the log source could not be opened
//	4  an entry was malformed or fell outside its bucket range
//	5  the report, export or notification could not be written
const (
	CodeConfigError   = 2
	CodeSourceError   = 3
	CodeAnalysisError = 4
	CodeOutputError   = 5
)
