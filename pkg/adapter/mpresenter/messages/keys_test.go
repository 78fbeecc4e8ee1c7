// 指示: miu200521358
package messages

import "testing"

func TestCommandShortMessagesAreDefined(t *testing.T) {
	keys := []string{
		CommandRootShort,
		CommandNormalizeShort,
		CommandSlotShort,
		CommandMirrorShort,
		CommandMatchShort,
		CommandSetupShort,
		CommandSetupAvatarShort,
		CommandSetupOutfitShort,
		CommandRemoveShort,
		CommandAlignShort,
		CommandUniformScaleShort,
		CommandMirrorSyncShort,
		CommandPresetShort,
		CommandPresetRecordShort,
		CommandPresetApplyShort,
		CommandPresetListShort,
		CommandPresetDeleteShort,
		CommandVersionShort,
	}

	seen := map[string]struct{}{}
	for _, key := range keys {
		if key == "" {
			t.Fatalf("key should not be empty")
		}
		if _, exists := seen[key]; exists {
			t.Fatalf("key should be unique: %s", key)
		}
		seen[key] = struct{}{}
	}
}

func TestTableHeadersAreUnique(t *testing.T) {
	headers := []string{
		HeaderOutfitBone, HeaderAvatarBone, HeaderSlot, HeaderConfidence,
		HeaderTitle, HeaderPath, HeaderKey, HeaderName,
	}
	seen := map[string]struct{}{}
	for _, header := range headers {
		if _, exists := seen[header]; exists {
			t.Fatalf("header should be unique: %s", header)
		}
		seen[header] = struct{}{}
	}
}
