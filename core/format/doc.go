// Package format renders the parameterized description templates found in the dataset.
//
// Templates reference parameters as #N[i] (integer) or #N[fK] (K decimals), N being
// 1-based. A trailing % scales the value by 100. Rich-text tags are stripped.
package format
