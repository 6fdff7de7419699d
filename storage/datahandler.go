// Copyright (c) 2017-2019 Andrew Goulas
// Licensed under the MIT license.

package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// ErrNotFound is returned when the requested command or setting does not
// exist.
var ErrNotFound = errors.New("storage: not found")

// ClickType distinguishes commands run on left click from those run on right
// click.
type ClickType string

const (
	ClickLeft  ClickType = "left"
	ClickRight ClickType = "right"
)

// ParseClickType parses "left" or "right", ignoring case.
func ParseClickType(s string) (ClickType, bool) {
	switch strings.ToLower(s) {
	case "left":
		return ClickLeft, true
	case "right":
		return ClickRight, true
	}
	return "", false
}

// Command types.
const (
	TypeConsole    = "console"
	TypeNone       = "none"
	TypePermission = "permission"
	TypeServer     = "server"
	TypeMessage    = "message"
)

// CommandTypes lists every command type in display order.
var CommandTypes = []string{TypeConsole, TypeNone, TypePermission, TypeServer, TypeMessage}

// IsCommandType reports whether s is a known command type, ignoring case.
func IsCommandType(s string) bool {
	for _, t := range CommandTypes {
		if strings.EqualFold(s, t) {
			return true
		}
	}
	return false
}

// Command is a command bound to an NPC. Position starts at 1.
type Command struct {
	Position   int    `db:"Position"`
	Type       string `db:"Type"`
	Command    string `db:"Command"`
	Permission string `db:"Permission"`
}

// Sound is the sound played when an NPC is clicked.
type Sound struct {
	Name   string  `db:"Sound"`
	Volume float64 `db:"Volume"`
	Pitch  float64 `db:"Pitch"`
}

// EditField selects the part of a command changed by EditCommand.
type EditField string

const (
	EditCommand    EditField = "cmd"
	EditPermission EditField = "perm"
)

const schema = `
CREATE TABLE IF NOT EXISTS Commands(
NpcID INTEGER NOT NULL,
Click TEXT NOT NULL,
Position INTEGER NOT NULL,
Type TEXT NOT NULL,
Command TEXT NOT NULL,
Permission TEXT NOT NULL DEFAULT '');
CREATE INDEX IF NOT EXISTS CommandsByNpc ON Commands(NpcID, Click, Position);
CREATE TABLE IF NOT EXISTS NpcSettings(
NpcID INTEGER NOT NULL PRIMARY KEY,
Cooldown INTEGER,
Sound TEXT,
Volume REAL,
Pitch REAL);`

// DataHandler stores the commands and settings of NPCs, keyed by NPC id.
type DataHandler struct {
	db *sqlx.DB
}

// Open opens the SQLite database at path, creating the schema if needed.
func Open(path string) (*DataHandler, error) {
	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &DataHandler{db}, nil
}

// Close closes the underlying database.
func (handler *DataHandler) Close() error {
	return handler.db.Close()
}

// AddCommand appends command to the list of npcID for click and returns its
// position.
func (handler *DataHandler) AddCommand(npcID int, click ClickType, command Command) (int, error) {
	tx, err := handler.db.Beginx()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var count int
	if err := tx.Get(&count, "SELECT COUNT(*) FROM Commands WHERE NpcID = ? AND Click = ?", npcID, click); err != nil {
		return 0, fmt.Errorf("count commands: %w", err)
	}

	position := count + 1
	_, err = tx.Exec(`INSERT INTO Commands(NpcID, Click, Position, Type, Command, Permission)
		VALUES(?, ?, ?, ?, ?, ?)`, npcID, click, position, strings.ToLower(command.Type), command.Command, command.Permission)
	if err != nil {
		return 0, fmt.Errorf("insert command: %w", err)
	}

	return position, tx.Commit()
}

// RemoveCommand removes the command at position and moves the following
// commands up by one.
func (handler *DataHandler) RemoveCommand(npcID int, click ClickType, position int) error {
	tx, err := handler.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.Exec("DELETE FROM Commands WHERE NpcID = ? AND Click = ? AND Position = ?", npcID, click, position)
	if err != nil {
		return fmt.Errorf("delete command: %w", err)
	}

	if n, _ := result.RowsAffected(); n == 0 {
		return ErrNotFound
	}

	_, err = tx.Exec("UPDATE Commands SET Position = Position - 1 WHERE NpcID = ? AND Click = ? AND Position > ?", npcID, click, position)
	if err != nil {
		return fmt.Errorf("renumber commands: %w", err)
	}

	return tx.Commit()
}

// EditCommand replaces the command string or the permission of the command
// at position.
func (handler *DataHandler) EditCommand(npcID int, click ClickType, position int, field EditField, value string) error {
	var column string
	switch field {
	case EditCommand:
		column = "Command"
	case EditPermission:
		column = "Permission"
	default:
		return fmt.Errorf("edit command: unknown field %q", field)
	}

	result, err := handler.db.Exec("UPDATE Commands SET "+column+" = ? WHERE NpcID = ? AND Click = ? AND Position = ?",
		value, npcID, click, position)
	if err != nil {
		return fmt.Errorf("edit command: %w", err)
	}

	if n, _ := result.RowsAffected(); n == 0 {
		return ErrNotFound
	}

	return nil
}

// Commands returns the commands of npcID for click, ordered by position.
func (handler *DataHandler) Commands(npcID int, click ClickType) ([]Command, error) {
	var commands []Command
	err := handler.db.Select(&commands, `SELECT Position, Type, Command, Permission FROM Commands
		WHERE NpcID = ? AND Click = ? ORDER BY Position`, npcID, click)
	if err != nil {
		return nil, fmt.Errorf("select commands: %w", err)
	}

	return commands, nil
}

// CompleteCommandNumbers returns the positions of the commands of npcID for
// click as strings, for tab completion.
func (handler *DataHandler) CompleteCommandNumbers(npcID int, click ClickType) ([]string, error) {
	var positions []int
	err := handler.db.Select(&positions, "SELECT Position FROM Commands WHERE NpcID = ? AND Click = ? ORDER BY Position",
		npcID, click)
	if err != nil {
		return nil, fmt.Errorf("select positions: %w", err)
	}

	numbers := make([]string, len(positions))
	for i, position := range positions {
		numbers[i] = strconv.Itoa(position)
	}

	return numbers, nil
}

// RemoveNPC deletes every command and setting of npcID.
func (handler *DataHandler) RemoveNPC(npcID int) error {
	tx, err := handler.db.Beginx()
	if err != nil {
		return fmt.Errorf("remove npc: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM Commands WHERE NpcID = ?", npcID); err != nil {
		return fmt.Errorf("delete commands: %w", err)
	}

	if _, err := tx.Exec("DELETE FROM NpcSettings WHERE NpcID = ?", npcID); err != nil {
		return fmt.Errorf("delete settings: %w", err)
	}

	return tx.Commit()
}

// MaxNPCID returns the highest NPC id with stored data, or -1 if there is
// none.
func (handler *DataHandler) MaxNPCID() (int, error) {
	var id sql.NullInt64
	err := handler.db.Get(&id, `SELECT MAX(NpcID) FROM (
		SELECT NpcID FROM Commands UNION ALL SELECT NpcID FROM NpcSettings)`)
	if err != nil {
		return 0, fmt.Errorf("select max npc id: %w", err)
	}

	if !id.Valid {
		return -1, nil
	}
	return int(id.Int64), nil
}

// SetCooldown sets the cooldown of npcID in seconds.
func (handler *DataHandler) SetCooldown(npcID int, seconds int) error {
	_, err := handler.db.Exec(`INSERT INTO NpcSettings(NpcID, Cooldown) VALUES(?, ?)
		ON CONFLICT(NpcID) DO UPDATE SET Cooldown = excluded.Cooldown`, npcID, seconds)
	if err != nil {
		return fmt.Errorf("set cooldown: %w", err)
	}
	return nil
}

// Cooldown returns the cooldown of npcID in seconds, or def if none is set.
func (handler *DataHandler) Cooldown(npcID int, def int) (int, error) {
	var cooldown sql.NullInt64
	err := handler.db.Get(&cooldown, "SELECT Cooldown FROM NpcSettings WHERE NpcID = ?", npcID)
	if err == sql.ErrNoRows || (err == nil && !cooldown.Valid) {
		return def, nil
	} else if err != nil {
		return 0, fmt.Errorf("select cooldown: %w", err)
	}

	return int(cooldown.Int64), nil
}

// SetSound sets the sound of npcID.
func (handler *DataHandler) SetSound(npcID int, sound Sound) error {
	_, err := handler.db.Exec(`INSERT INTO NpcSettings(NpcID, Sound, Volume, Pitch) VALUES(?, ?, ?, ?)
		ON CONFLICT(NpcID) DO UPDATE SET Sound = excluded.Sound, Volume = excluded.Volume, Pitch = excluded.Pitch`,
		npcID, sound.Name, sound.Volume, sound.Pitch)
	if err != nil {
		return fmt.Errorf("set sound: %w", err)
	}
	return nil
}

// Sound returns the sound of npcID, or ErrNotFound if none is set.
func (handler *DataHandler) Sound(npcID int) (Sound, error) {
	var row struct {
		Sound  sql.NullString  `db:"Sound"`
		Volume sql.NullFloat64 `db:"Volume"`
		Pitch  sql.NullFloat64 `db:"Pitch"`
	}

	err := handler.db.Get(&row, "SELECT Sound, Volume, Pitch FROM NpcSettings WHERE NpcID = ?", npcID)
	if err == sql.ErrNoRows || (err == nil && !row.Sound.Valid) {
		return Sound{}, ErrNotFound
	} else if err != nil {
		return Sound{}, fmt.Errorf("select sound: %w", err)
	}

	return Sound{row.Sound.String, row.Volume.Float64, row.Pitch.Float64}, nil
}
