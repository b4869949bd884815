// Package finstate holds the financial state of a single-user-switchable
// personal-finance simulation. It keeps per-user collections (accounts,
// transactions, budgets, goals, notifications) in memory and keeps them
// mutually consistent as mutations occur.
//
// The core functionalities include:
//   - Entity Store: typed per-user collections, exclusively owned by the
//     store so that mutations are immediately visible through any selection.
//   - Mutation Service: validated state transitions (add/edit transactions,
//     budgets and goals, balance reconciliation, notification read flags,
//     user switching) that apply completely or not at all.
//   - Derivation Engine: pure functions computing views on demand (recent
//     transactions, category totals, credit utilization, goal commitments).
//   - Session Context: an explicit object scoping every operation to one
//     active user, holding the UI-transient selections, the assistant quota
//     and the chat transcript.
//   - Data Persistence: encoding and decoding of user profiles to and from
//     human-readable, version-controllable JSONL files.
//
// This package serves as the foundational logic for the `pfs` command-line
// tool; the presentation layer owns all formatting and confirmation gates.
package finstate
