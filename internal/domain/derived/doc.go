// Package derived holds the secondary jump calculators: approach versus
// standing delta, fatigue decay, trainable potential and body-weight
// adjustment.
//
// Jump arguments are inches and are expected to be validated by the caller.
// Each calculator validates only its own options and returns
// measure.FieldError values naming the rejected option.
package derived
