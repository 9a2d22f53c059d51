// SPDX-License-Identifier: GPL-3.0-or-later
package imapstore

import "github.com/emersion/go-imap"

func uids(vals ...int) []uint32 {
	out := []uint32{}
	for _, v := range vals {
		out = append(out, uint32(v))
	}

	return out
}

func seqSetOf(vals ...int) *imap.SeqSet {
	set := &imap.SeqSet{}
	set.AddNum(uids(vals...)...)

	return set
}
