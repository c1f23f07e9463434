// SPDX-License-Identifier: Unlicense OR MIT

package event

import "testing"

func TestConsumptionStates(t *testing.T) {
	in := Gather(Pointer{X: 1}, Wheel{DY: 2})
	if !in[0].Available() || in[0].Consumed() {
		t.Fatal("fresh event not available")
	}

	in[0].Consume()
	if in[0].Available() || in[0].Status() != StatusWidget {
		t.Errorf("status after Consume = %v", in[0].Status())
	}

	// a layout may take over an event a widget already used
	in[0].ConsumeByLayout()
	if in[0].Status() != StatusLayout {
		t.Errorf("status after ConsumeByLayout = %v", in[0].Status())
	}

	if !in[1].Available() {
		t.Error("consumption leaked to a sibling event")
	}
}
