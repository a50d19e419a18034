package ramfat

import (
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/rusted-os/ramfat/checkpoint"
)

// These errors may occur while working with the store.
var (
	ErrSlotExhausted    = errors.New("no free directory entry")
	ErrClusterExhausted = errors.New("no free cluster")
	ErrNotFound         = errors.New("file not found")
	// ErrTruncated is returned together with the clamped data. It is no failure.
	ErrTruncated = errors.New("content larger than the destination, truncated")
	// ErrOverrun marks a payload larger than one cluster. In lenient mode the
	// payload is still written and spills into the storage of the following clusters.
	ErrOverrun       = errors.New("payload larger than one cluster")
	ErrInvalidName   = errors.New("invalid file name")
	ErrExists        = errors.New("file already exists")
	ErrInvalidRegion = errors.New("region does not hold a resident FAT16 layout")
)

// Store is the resident file store. It manages the directory table, the
// cluster table and the data region directly over a byte slice.
//
// A Store must be owned by a single goroutine.
type Store struct {
	mem    []byte
	strict bool
	now    func() time.Time
	log    *slog.Logger
}

// Stats summarizes the occupation of the region.
type Stats struct {
	UsedSlots    int
	FreeSlots    int
	FreeClusters int
}

type Option func(*Store)

// WithStrict rejects payloads larger than a cluster and duplicate names
// instead of reproducing the unchecked behaviour of the region.
func WithStrict(strict bool) Option {
	return func(s *Store) {
		s.strict = strict
	}
}

// WithClock enables stamping the creation and write date/time fields.
// Without a clock these fields stay zero.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

func newStore(mem []byte, opts []Option) (*Store, error) {
	if len(mem) < RegionSize {
		return nil, checkpoint.Wrap(ErrInvalidRegion, errors.New("region too small"))
	}

	s := &Store{
		mem: mem,
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// New allocates and formats a fresh region.
func New(opts ...Option) *Store {
	s, err := Format(make([]byte, RegionSize), opts...)
	if err != nil {
		// The region has exactly the right size, encoding the BPB can not fail.
		panic(err)
	}
	return s
}

// Format writes an empty layout into mem and returns a store over it.
func Format(mem []byte, opts ...Option) (*Store, error) {
	s, err := newStore(mem, opts)
	if err != nil {
		return nil, err
	}

	// Boot sector, both FATs and the root directory.
	clear(s.mem[:dataOffset])

	bpb, err := defaultBPB()
	if err != nil {
		return nil, err
	}
	if err := bpb.encode(s.mem[:SectorSize]); err != nil {
		return nil, err
	}
	s.mem[510] = 0x55
	s.mem[511] = 0xAA

	s.setFAT(0, fatMedia)
	s.setFAT(1, fatEOC)

	s.log.Debug("region formatted", slog.Int("size", len(mem)))
	return s, nil
}

// Mount adopts a region which was formatted before, for example after a reset
// which kept the memory contents.
func Mount(mem []byte, opts ...Option) (*Store, error) {
	s, err := newStore(mem, opts)
	if err != nil {
		return nil, err
	}

	bpb, err := decodeBPB(s.mem[:SectorSize])
	if err != nil {
		return nil, checkpoint.Wrap(err, ErrInvalidRegion)
	}

	switch {
	case !(bpb.BSJumpBoot[0] == 0xEB && bpb.BSJumpBoot[2] == 0x90) && bpb.BSJumpBoot[0] != 0xE9:
		return nil, checkpoint.Wrap(errors.New("no valid jump instructions at the beginning"), ErrInvalidRegion)
	case bpb.BytesPerSector != SectorSize:
		return nil, checkpoint.Wrap(errors.New("invalid sector size"), ErrInvalidRegion)
	case int(bpb.SectorsPerCluster)*SectorSize != ClusterSize:
		return nil, checkpoint.Wrap(errors.New("invalid sectors per cluster"), ErrInvalidRegion)
	case bpb.NumFATs != 2 || bpb.FATSize16 != fatSectors:
		return nil, checkpoint.Wrap(errors.New("invalid FAT geometry"), ErrInvalidRegion)
	case bpb.RootEntryCount != RootEntries:
		return nil, checkpoint.Wrap(errors.New("invalid root entry count"), ErrInvalidRegion)
	case s.fat(0) != fatMedia:
		return nil, checkpoint.Wrap(errors.New("invalid media marker in FAT"), ErrInvalidRegion)
	}

	s.log.Debug("region mounted", slog.Int("usedSlots", s.Stats().UsedSlots))
	return s, nil
}

// Region returns the bytes the store works on.
func (s *Store) Region() []byte {
	return s.mem
}

func (s *Store) fat(cluster int) fatEntry {
	off := fatOffset + cluster*2
	return fatEntry(uint16(s.mem[off]) | uint16(s.mem[off+1])<<8)
}

// setFAT writes a marker into both FAT copies.
func (s *Store) setFAT(cluster int, value fatEntry) {
	for _, base := range [...]int{fatOffset, fat2Offset} {
		off := base + cluster*2
		s.mem[off] = byte(value)
		s.mem[off+1] = byte(value >> 8)
	}
}

func (s *Store) entry(slot int) (EntryHeader, error) {
	off := rootDirOffset + slot*EntrySize
	return decodeEntry(s.mem[off : off+EntrySize])
}

func (s *Store) putEntry(slot int, h EntryHeader) error {
	off := rootDirOffset + slot*EntrySize
	return h.encode(s.mem[off : off+EntrySize])
}

// clusterOffset resolves a cluster index to its offset in the region.
func (s *Store) clusterOffset(cluster uint16) (int, error) {
	if cluster < 2 || int(cluster) >= FATEntries {
		return 0, checkpoint.Errorf("cluster %d outside of the data region: %w", cluster, ErrInvalidRegion)
	}
	return dataOffset + (int(cluster)-2)*ClusterSize, nil
}

func (s *Store) findFreeSlot() (int, error) {
	for slot := 0; slot < RootEntries; slot++ {
		first := s.mem[rootDirOffset+slot*EntrySize]
		if first == entryFree || first == entryDeleted {
			return slot, nil
		}
	}
	return 0, checkpoint.From(ErrSlotExhausted)
}

func (s *Store) findFreeCluster() (uint16, error) {
	for cluster := 2; cluster < FATEntries; cluster++ {
		if s.fat(cluster).IsFree() {
			return uint16(cluster), nil
		}
	}
	return 0, checkpoint.From(ErrClusterExhausted)
}

// Lookup scans all slots for an exact match of name.
func (s *Store) Lookup(name Name) (DirEntry, bool) {
	for slot := 0; slot < RootEntries; slot++ {
		h, err := s.entry(slot)
		if err != nil || !h.IsOccupied() {
			continue
		}
		if h.Name == name {
			return DirEntry{EntryHeader: h, Slot: slot}, true
		}
	}
	return DirEntry{}, false
}

func (s *Store) stamp(h *EntryHeader, created bool) {
	if s.now == nil {
		return
	}
	t := s.now()
	h.WriteDate = FormatDate(t)
	h.WriteTime = FormatTime(t)
	h.LastAccessDate = h.WriteDate
	if created {
		h.CreateDate = h.WriteDate
		h.CreateTime = h.WriteTime
		h.CreateTimeTenth = byte(t.Second()%2*100 + t.Nanosecond()/10_000_000)
	}
}

// allocate finds a free slot and a free cluster, marks the cluster terminal
// and writes a zero sized entry. Nothing changes if either scan fails.
func (s *Store) allocate(name Name) (DirEntry, error) {
	if !name.Valid() {
		return DirEntry{}, checkpoint.From(ErrInvalidName)
	}

	slot, err := s.findFreeSlot()
	if err != nil {
		return DirEntry{}, err
	}
	cluster, err := s.findFreeCluster()
	if err != nil {
		return DirEntry{}, err
	}

	h := EntryHeader{
		Name:           name,
		Ext:            DefaultExt,
		Attribute:      AttrArchive,
		FirstClusterLO: cluster,
	}
	s.stamp(&h, true)

	s.setFAT(int(cluster), fatEOC)
	if err := s.putEntry(slot, h); err != nil {
		return DirEntry{}, err
	}
	return DirEntry{EntryHeader: h, Slot: slot}, nil
}

// Create adds an empty file.
func (s *Store) Create(name Name) error {
	if s.strict {
		if _, ok := s.Lookup(name); ok {
			return checkpoint.From(ErrExists)
		}
	}

	e, err := s.allocate(name)
	if err != nil {
		s.log.Debug("create failed", slog.String("name", name.String()), slog.Any("err", err))
		return err
	}

	s.log.Debug("created", slog.String("name", name.String()), slog.Int("slot", e.Slot), slog.Int("cluster", int(e.FirstClusterLO)))
	return nil
}

// Save writes data as the content of name. An existing file is rewritten in
// its cluster, otherwise a slot and a cluster are allocated like in Create.
//
// Data larger than one cluster returns ErrOverrun. In strict mode nothing is
// written, otherwise the data spills into the following clusters' storage
// (bounded by the end of the region) and the full length is recorded.
func (s *Store) Save(name Name, data []byte) error {
	overrun := len(data) > ClusterSize
	if overrun && s.strict {
		return checkpoint.From(ErrOverrun)
	}

	e, ok := s.Lookup(name)
	if !ok {
		var err error
		e, err = s.allocate(name)
		if err != nil {
			s.log.Debug("save failed", slog.String("name", name.String()), slog.Any("err", err))
			return err
		}
	}

	off, err := s.clusterOffset(e.FirstClusterLO)
	if err != nil {
		return err
	}

	end := off + len(data)
	if end > len(s.mem) {
		end = len(s.mem)
	}
	copy(s.mem[off:end], data)

	e.FileSize = uint32(len(data))
	s.stamp(&e.EntryHeader, false)
	if err := s.putEntry(e.Slot, e.EntryHeader); err != nil {
		return err
	}

	if overrun {
		s.log.Warn("payload spilled past its cluster", slog.String("name", name.String()), slog.Int("size", len(data)))
		return checkpoint.From(ErrOverrun)
	}
	return nil
}

// content returns the region bytes of an entry, bounded by the region end.
func (s *Store) content(e DirEntry) ([]byte, error) {
	off, err := s.clusterOffset(e.FirstClusterLO)
	if err != nil {
		return nil, err
	}
	end := off + int(e.FileSize)
	if end > len(s.mem) {
		end = len(s.mem)
	}
	return s.mem[off:end], nil
}

// Load returns a copy of the content of name.
func (s *Store) Load(name Name) ([]byte, error) {
	e, ok := s.Lookup(name)
	if !ok {
		return nil, checkpoint.From(ErrNotFound)
	}

	src, err := s.content(e)
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), src...), nil
}

// ReadInto copies min(fileSize, len(dst)) bytes of name into dst.
// If the file is larger than dst, the copied count is returned together with ErrTruncated.
func (s *Store) ReadInto(name Name, dst []byte) (int, error) {
	e, ok := s.Lookup(name)
	if !ok {
		return 0, checkpoint.From(ErrNotFound)
	}

	src, err := s.content(e)
	if err != nil {
		return 0, err
	}

	n := copy(dst, src)
	if int(e.FileSize) > len(dst) {
		return n, checkpoint.From(ErrTruncated)
	}
	return n, nil
}

// List returns the occupied entries in slot order. At most limit entries are
// returned, a limit <= 0 scans all slots.
func (s *Store) List(limit int) []DirEntry {
	var entries []DirEntry
	for slot := 0; slot < RootEntries; slot++ {
		if limit > 0 && len(entries) >= limit {
			break
		}
		h, err := s.entry(slot)
		if err != nil || !h.IsOccupied() {
			continue
		}
		entries = append(entries, DirEntry{EntryHeader: h, Slot: slot})
	}
	return entries
}

func (s *Store) Stats() Stats {
	var st Stats
	for slot := 0; slot < RootEntries; slot++ {
		first := s.mem[rootDirOffset+slot*EntrySize]
		if first == entryFree || first == entryDeleted {
			st.FreeSlots++
		} else {
			st.UsedSlots++
		}
	}
	for cluster := 2; cluster < FATEntries; cluster++ {
		if s.fat(cluster).IsFree() {
			st.FreeClusters++
		}
	}
	return st
}

// The methods below satisfy fatFileFs.

func (s *Store) load(name Name) ([]byte, error) {
	return s.Load(name)
}

func (s *Store) save(name Name, data []byte) error {
	return s.Save(name, data)
}

func (s *Store) list() []DirEntry {
	return s.List(0)
}

func (s *Store) lookup(name Name) (DirEntry, bool) {
	return s.Lookup(name)
}
