// Package sig provides the canonical signature model for overcall.
//
// This package contains type definitions only. All other internal packages
// import sig; sig imports nothing internal. This ensures the signature model
// remains the foundational layer with no circular dependencies.
//
// Key design constraints:
//   - TypeExpr is a closed, sealed union built at registration time. Type
//     identity is decided by TypeExpr.Key(), never by comparing opaque
//     runtime types.
//   - Signatures are immutable after construction. Parameter positions are
//     assigned by the constructor and are meaningful only within one
//     signature, never across candidates.
//   - Display rendering (Signature.String, TypeExpr.String) is a stable
//     contract: aggregate incompatibility reports quote it verbatim.
package sig
