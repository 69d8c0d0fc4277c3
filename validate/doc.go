// Package validate provides pure format validators for regulated
// identifiers: FDA premarket submission numbers, product codes, ISO 3166-1
// country codes, and calendar dates.
//
// Every validator follows the same contract: fold case first, then match
// the canonical pattern, so "k240001" and "K240001" hit the identical check.
// On success the canonical uppercase form is returned; on failure a
// *datamodels.FormatError names the rejected value and the expected
// pattern. All validators are idempotent: re-running one on its own output
// returns that output unchanged.
package validate
