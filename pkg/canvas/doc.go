// Package canvas defines the shared object model for the adcanvas engine.
//
// This package is the single source of truth for the data structures that
// every engine component reads and mutates: canvas objects, documents, and
// compliance results. It contains no layout or validation logic of its own;
// the classifier, resize engine, and compliance engine all operate on these
// types.
//
// # Core Types
//
//   - [CanvasObject]: One graphical element (shape, text, or image)
//   - [CanvasDocument]: One canvas state with its ordered object list
//   - [ComplianceCheck]: One pass/warning/fail rule evaluation
//   - [Rect]: Absolute bounding box in canvas space
//
// # Derived Values
//
// An object's semantic [Role] and position [Anchor] are never stored on the
// object. They are pure functions of geometry and canvas size, recomputed by
// the classify subpackage whenever they are needed. Persisting them would
// allow stale values to survive independent edits.
//
// # Serialization
//
// All types carry json and bson tags so the same structs serve the JSON
// import/export surface, the HTTP API, and the MongoDB document store.
// Paint order is array order; there is no explicit z-index field.
package canvas
