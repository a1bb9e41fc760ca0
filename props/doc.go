// SPDX-License-Identifier: MIT
// Package props provides the property bag carried by every model entity.
//
// A Bag maps names to typed Values (int, float, string, bool, float vector).
// The entity layer reserves a few keys:
//
//	color      – 4 floats (RGBA), DefaultColor when absent
//	visibility – int flag, 1 (visible) when absent
//	pickable   – int flag, 1 when absent
//	direction  – int 0/1 stored on edge-uses
//
// Any other key is free for caller-defined domain extensions.
package props
