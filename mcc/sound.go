// Copyright (c) 2017-2019 Andrew Goulas
// Licensed under the MIT license.

package mcc

import "strings"

// Sound identifies a sound effect that can be played to a player.
type Sound int

const (
	SoundAmbientCave Sound = iota
	SoundBlockAnvilLand
	SoundBlockAnvilUse
	SoundBlockChestClose
	SoundBlockChestOpen
	SoundBlockFireExtinguish
	SoundBlockGlassBreak
	SoundBlockGrassBreak
	SoundBlockLavaPop
	SoundBlockLeverClick
	SoundBlockNoteBass
	SoundBlockNoteBell
	SoundBlockNoteChime
	SoundBlockNoteHarp
	SoundBlockNotePling
	SoundBlockPistonExtend
	SoundBlockStoneBreak
	SoundBlockWoodenDoorClose
	SoundBlockWoodenDoorOpen
	SoundEntityArrowHit
	SoundEntityBatTakeoff
	SoundEntityBlazeShoot
	SoundEntityCatMeow
	SoundEntityChickenEgg
	SoundEntityCowAmbient
	SoundEntityCreeperPrimed
	SoundEntityEnderdragonGrowl
	SoundEntityEndermenTeleport
	SoundEntityExperienceOrbPickup
	SoundEntityFireworkLaunch
	SoundEntityGenericExplode
	SoundEntityHorseGallop
	SoundEntityItemPickup
	SoundEntityLightningThunder
	SoundEntityPlayerBurp
	SoundEntityPlayerLevelup
	SoundEntityVillagerNo
	SoundEntityVillagerTrading
	SoundEntityVillagerYes
	SoundEntityWitherSpawn
	SoundEntityZombieAmbient
	SoundUIButtonClick
	SoundUIToastChallengeComplete

	SoundCount = iota
)

var soundNames = [SoundCount]string{
	"AMBIENT_CAVE",
	"BLOCK_ANVIL_LAND",
	"BLOCK_ANVIL_USE",
	"BLOCK_CHEST_CLOSE",
	"BLOCK_CHEST_OPEN",
	"BLOCK_FIRE_EXTINGUISH",
	"BLOCK_GLASS_BREAK",
	"BLOCK_GRASS_BREAK",
	"BLOCK_LAVA_POP",
	"BLOCK_LEVER_CLICK",
	"BLOCK_NOTE_BASS",
	"BLOCK_NOTE_BELL",
	"BLOCK_NOTE_CHIME",
	"BLOCK_NOTE_HARP",
	"BLOCK_NOTE_PLING",
	"BLOCK_PISTON_EXTEND",
	"BLOCK_STONE_BREAK",
	"BLOCK_WOODEN_DOOR_CLOSE",
	"BLOCK_WOODEN_DOOR_OPEN",
	"ENTITY_ARROW_HIT",
	"ENTITY_BAT_TAKEOFF",
	"ENTITY_BLAZE_SHOOT",
	"ENTITY_CAT_MEOW",
	"ENTITY_CHICKEN_EGG",
	"ENTITY_COW_AMBIENT",
	"ENTITY_CREEPER_PRIMED",
	"ENTITY_ENDERDRAGON_GROWL",
	"ENTITY_ENDERMEN_TELEPORT",
	"ENTITY_EXPERIENCE_ORB_PICKUP",
	"ENTITY_FIREWORK_LAUNCH",
	"ENTITY_GENERIC_EXPLODE",
	"ENTITY_HORSE_GALLOP",
	"ENTITY_ITEM_PICKUP",
	"ENTITY_LIGHTNING_THUNDER",
	"ENTITY_PLAYER_BURP",
	"ENTITY_PLAYER_LEVELUP",
	"ENTITY_VILLAGER_NO",
	"ENTITY_VILLAGER_TRADING",
	"ENTITY_VILLAGER_YES",
	"ENTITY_WITHER_SPAWN",
	"ENTITY_ZOMBIE_AMBIENT",
	"UI_BUTTON_CLICK",
	"UI_TOAST_CHALLENGE_COMPLETE",
}

// String returns the identifier of the sound.
func (sound Sound) String() string {
	if sound < 0 || sound >= SoundCount {
		return ""
	}
	return soundNames[sound]
}

// SoundNames returns the identifiers of all sounds, in declaration order.
func SoundNames() []string {
	names := make([]string, SoundCount)
	copy(names, soundNames[:])
	return names
}

// ParseSound returns the sound with the specified identifier, ignoring case.
func ParseSound(name string) (Sound, bool) {
	for i, s := range soundNames {
		if strings.EqualFold(s, name) {
			return Sound(i), true
		}
	}

	return 0, false
}
