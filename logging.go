// SPDX-License-Identifier: MIT

package deflate

import "github.com/sirupsen/logrus"

// logHook is an optional diagnostics hook. A nil *logrus.Logger (the
// default) costs nothing at every call site below: each is guarded by a nil
// check before touching the logger.
type logHook struct {
	logger *logrus.Logger
}

func (h logHook) blockEmitted(bt blockType, tokens int, final bool) {
	if h.logger == nil {
		return
	}
	h.logger.WithFields(logrus.Fields{
		"block_type": bt,
		"tokens":     tokens,
		"final":      final,
	}).Debug("deflate: block emitted")
}

func (h logHook) windowSlid(consumed, carried int) {
	if h.logger == nil {
		return
	}
	h.logger.WithFields(logrus.Fields{
		"consumed": consumed,
		"carried":  carried,
	}).Trace("deflate: window slid")
}
