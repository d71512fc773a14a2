// Package models defines the core domain models for the ledger.
//
// # Parties
//
// Every debt and every group member resolves to a Party:
//   - RealUser: a registered account. It authenticates, receives
//     notifications and must approve changes that affect it.
//   - VirtualContact: a name owned by exactly one real user. It cannot act,
//     and changes affecting it apply immediately.
//
// # Debts
//
// A Debt is a directional obligation debtor → creditor. Debts with more than
// one installment own exactly InstallmentCount Installment rows whose amounts
// sum to TotalAmount.
//
// # Shared expenses
//
// A Group holds Members and a currency. A Split is one group expense with
// payers (who paid what) and participants (who owes which share). Settlements
// are append-only transfers between members.
//
// # Change requests
//
// A ChangeRequest wraps a typed Mutation against a debt that needs the
// counterparty's approval before it is applied.
//
// # Design Principles
//
//  1. Money is always money.Amount (integer minor units), never float64.
//  2. Relationships are ID strings, not pointers.
//  3. Version fields back optimistic concurrency in the store.
package models
