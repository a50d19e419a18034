// File model contains the structs which match the direct structures of the resident FAT16 region
// and the codec which moves them in and out of the region bytes.

package ramfat

import (
	"bytes"
	"encoding/binary"

	"github.com/rusted-os/ramfat/checkpoint"
)

// Region layout. Offsets are relative to the start of the region and mirror
// the RAM map of the resident ramdisk: boot sector, two FAT copies, the root
// directory and the data region.
const (
	SectorSize  = 512
	ClusterSize = 512
	RootEntries = 512
	EntrySize   = 32
	// FATEntries is the number of cluster markers searched for allocation.
	// Indices 0 and 1 are reserved.
	FATEntries = 4096
	fatSectors = 32

	fatOffset     = 0x0200
	fat2Offset    = fatOffset + fatSectors*SectorSize
	rootDirOffset = 0x8200
	dataOffset    = 0xC200

	// RegionSize is the minimum number of bytes a region needs to hold every
	// allocatable cluster.
	RegionSize = dataOffset + (FATEntries-2)*ClusterSize
)

// Cluster table markers.
const (
	fatFree  fatEntry = 0x0000
	fatMedia fatEntry = 0xFFF8
	fatEOC   fatEntry = 0xFFFF
)

// Attributes of a directory entry.
const (
	AttrReadOnly  = 0x01
	AttrHidden    = 0x02
	AttrSystem    = 0x04
	AttrVolumeID  = 0x08
	AttrDirectory = 0x10
	AttrArchive   = 0x20
)

// First name byte markers.
const (
	entryFree    = 0x00
	entryDeleted = 0xE5
)

const mediaFixedDisk = 0xF8

// fatEntry is a single 16 bit marker of the cluster table.
type fatEntry uint16

func (e fatEntry) IsFree() bool {
	return e == fatFree
}

// IsEOF reports whether the marker terminates a chain. Every allocated
// cluster of the store is terminal as files never span more than one cluster.
func (e fatEntry) IsEOF() bool {
	return e >= 0xFFF8
}

func (e fatEntry) IsReserved() bool {
	return e == 0x0001 || (e >= 0xFFF0 && e <= 0xFFF6)
}

type BPB struct {
	BSJumpBoot          [3]byte
	BSOEMName           [8]byte
	BytesPerSector      uint16
	SectorsPerCluster   byte
	ReservedSectorCount uint16
	NumFATs             byte
	RootEntryCount      uint16
	TotalSectors16      uint16
	Media               byte
	FATSize16           uint16
	SectorsPerTrack     uint16
	NumberOfHeads       uint16
	HiddenSectors       uint32
	TotalSectors32      uint32
	FATSpecificData     [54]byte
}

type FAT16SpecificData struct {
	BSDriveNumber    byte
	BSReserved1      byte
	BSBootSignature  byte
	BSVolumeId       uint32
	BSVolumeLabel    [11]byte
	BSFileSystemType [8]byte
}

// EntryHeader is the 32 byte directory entry.
type EntryHeader struct {
	Name            [8]byte
	Ext             [3]byte
	Attribute       byte
	NTReserved      byte
	CreateTimeTenth byte
	CreateTime      uint16
	CreateDate      uint16
	LastAccessDate  uint16
	FirstClusterHI  uint16
	WriteTime       uint16
	WriteDate       uint16
	FirstClusterLO  uint16
	FileSize        uint32
}

// IsFree reports a slot that was never used.
func (h EntryHeader) IsFree() bool {
	return h.Name[0] == entryFree
}

// IsDeleted reports a slot marked as deleted. Nothing in the store produces
// this state but regions mounted from elsewhere may contain it.
func (h EntryHeader) IsDeleted() bool {
	return h.Name[0] == entryDeleted
}

func (h EntryHeader) IsOccupied() bool {
	return !h.IsFree() && !h.IsDeleted()
}

// DirEntry is an occupied directory entry together with the slot it lives in.
type DirEntry struct {
	EntryHeader
	Slot int
}

// FileName returns the base name of the entry.
func (e DirEntry) FileName() Name {
	return Name(e.EntryHeader.Name)
}

func decodeEntry(b []byte) (EntryHeader, error) {
	var h EntryHeader
	err := binary.Read(bytes.NewReader(b[:EntrySize]), binary.LittleEndian, &h)
	return h, checkpoint.From(err)
}

func (h EntryHeader) encode(dst []byte) error {
	buf := bytes.NewBuffer(make([]byte, 0, EntrySize))
	if err := binary.Write(buf, binary.LittleEndian, h); err != nil {
		return checkpoint.From(err)
	}
	copy(dst[:EntrySize], buf.Bytes())
	return nil
}

func decodeBPB(b []byte) (BPB, error) {
	var bpb BPB
	err := binary.Read(bytes.NewReader(b), binary.LittleEndian, &bpb)
	return bpb, checkpoint.From(err)
}

func (bpb BPB) encode(dst []byte) error {
	buf := bytes.NewBuffer(make([]byte, 0, SectorSize))
	if err := binary.Write(buf, binary.LittleEndian, bpb); err != nil {
		return checkpoint.From(err)
	}
	copy(dst, buf.Bytes())
	return nil
}

func (d FAT16SpecificData) encode() ([54]byte, error) {
	var out [54]byte
	buf := bytes.NewBuffer(make([]byte, 0, len(out)))
	if err := binary.Write(buf, binary.LittleEndian, d); err != nil {
		return out, checkpoint.From(err)
	}
	copy(out[:], buf.Bytes())
	return out, nil
}

// defaultBPB describes the resident region.
func defaultBPB() (BPB, error) {
	bpb := BPB{
		BSJumpBoot:          [3]byte{0xEB, 0x3C, 0x90},
		BSOEMName:           [8]byte{'R', 'U', 'S', 'T', 'E', 'D', ' ', ' '},
		BytesPerSector:      SectorSize,
		SectorsPerCluster:   ClusterSize / SectorSize,
		ReservedSectorCount: 1,
		NumFATs:             2,
		RootEntryCount:      RootEntries,
		TotalSectors16:      RegionSize / SectorSize,
		Media:               mediaFixedDisk,
		FATSize16:           fatSectors,
	}

	specific, err := FAT16SpecificData{
		BSBootSignature:  0x29,
		BSVolumeLabel:    [11]byte{'R', 'A', 'M', 'D', 'I', 'S', 'K', ' ', ' ', ' ', ' '},
		BSFileSystemType: [8]byte{'F', 'A', 'T', '1', '6', ' ', ' ', ' '},
	}.encode()
	bpb.FATSpecificData = specific
	return bpb, err
}
