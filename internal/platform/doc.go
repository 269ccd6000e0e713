package platform

// Package platform contains the process-facing glue: parsing the delimited
// command-line argument into filename/URL pairs and the filesystem helpers
// that create output files and stream bodies into them.
