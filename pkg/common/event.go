/*
 * MIT License
 *
 * Copyright (c) 2023 EASL and the vHive community
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package common

type EventKind int

const (
	None EventKind = iota
	Start
	End
)

func (k EventKind) String() string {
	switch k {
	case Start:
		return "START"
	case End:
		return "END"
	default:
		return "NONE"
	}
}

// ReconfigEvent is a reconfiguration lifecycle transition read from the event
// log. Timestamp uses the unit of the series index it is merged into.
type ReconfigEvent struct {
	Timestamp float64
	Kind      EventKind
	Name      string
}

// Outcomes of reading one event log.
const (
	OutcomeComplete = "complete"
	OutcomeNoEnd    = "no_end"
	OutcomeNone     = "none"
	OutcomeMultiple = "multiple"
)
