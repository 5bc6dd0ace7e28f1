// Package selection holds the per-figure choices of a configuration and the
// order-level add-ons.
//
// The package includes:
//   - Sex and Category: the enumerations driving the parts catalog
//   - Figure: one figure's sex, four single-valued attributes and a bounded,
//     insertion-ordered accessory set
//   - AddOns: the optional pet and the background (catalog id or custom reference)
//   - Store: up to plan.MaxFigures figures addressed by 1-based figure number
//
// Key invariant: hair and face items are sex-specific, so changing a figure's sex
// clears both. Every mutation goes through Store and keeps that invariant.
//
// Figure and Store are plain values (fixed-size arrays, no shared slices), so
// copying a Store yields an independent snapshot.
package selection
