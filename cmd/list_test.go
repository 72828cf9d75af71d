package cmd

import "testing"

func TestListRequiresExactlyOneSide(t *testing.T) {
	oldM, oldC := listMetadata, listCustomer
	defer func() { listMetadata, listCustomer = oldM, oldC }()

	listMetadata, listCustomer = false, false
	if err := listCmd.RunE(listCmd, nil); err == nil {
		t.Fatalf("expected error when no side is given")
	}
	listMetadata, listCustomer = true, true
	if err := listCmd.RunE(listCmd, nil); err == nil {
		t.Fatalf("expected error when both sides are given")
	}
}
