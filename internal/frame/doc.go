// Package frame decodes the XML pages served by the ventilation unit.
//
// A page carries a language tag and two parallel lists: parameter labels
// (ID elements) and their raw values (VA elements). Parse pairs them by
// position into a Frame, a label to raw-text map that keeps first-seen label
// order. Values are not interpreted here; see package parameter.
package frame
