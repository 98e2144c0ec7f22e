/*
Package dump persists and reads back states of deployed Neo contracts.

A dump couples the states of a set of contracts on one chain at one height
with the full storage contents of those contracts. Dumps feed tests that run
against previously deployed state and allow offline inspection of a running
suite.

Dumps live in the file system in human-readable encoding: a JSON file with
the contract states and a CSV file with base64-encoded storage items, both
named after the dump ID.
*/
package dump
