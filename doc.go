// Package teller models a small single-process bank: customers, savings
// and checking accounts, and an append-only transaction audit trail,
// persisted as three flat comma-delimited text files that remain
// hand-editable.
//
// The package is organised in four layers, leaves first:
//   - the record codec validates and converts single lines of the three
//     record kinds against a strict textual grammar;
//   - the record store loads, rewrites and deletes lines of one flat
//     file, skipping anything the codec rejects;
//   - the domain model carries the business rules: balance floors per
//     account kind, the savings 30-day transfer window, customer
//     deletability;
//   - the Ledger orchestrates them, allocating ids and keeping the
//     three files mutually consistent across operations.
//
// Domain mutations are pure; the Ledger persists explicitly after a
// successful mutation, which keeps the model testable without a
// filesystem.
package teller
