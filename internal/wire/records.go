package wire

import (
	"encoding/binary"

	"github.com/taskdeck/task-tracker/internal/model"
)

// Input buffer geometry. Both input buffers are a 16-byte reserved header
// followed by the table capacity's worth of fixed-stride entries.
const (
	InputHeaderSize = 16

	TaskEntryStride    = 916
	ServiceEntryStride = 128

	TaskBufferSize    = InputHeaderSize + model.MaxTasks*TaskEntryStride
	ServiceBufferSize = InputHeaderSize + model.MaxServices*ServiceEntryStride
)

// Task entry layout, byte offsets from the entry start. The id field is
// followed by 3 padding bytes so the title lands on a 4-byte boundary.
const (
	taskOffLegacyID    = 0
	taskOffStatus      = 4
	taskOffPriority    = 8
	taskOffID          = 12
	taskOffTitle       = 52
	taskOffDescription = 180
	taskOffCategory    = 692
	taskOffServiceName = 756
	taskOffDueDate     = 820
	taskOffAssignedTo  = 852
)

// Service entry layout.
const (
	serviceOffID   = 0
	serviceOffName = 64
)

// TaskEntry returns the i-th task entry window of an input buffer.
func TaskEntry(buf []byte, i int) []byte {
	off := InputHeaderSize + i*TaskEntryStride
	return buf[off : off+TaskEntryStride]
}

// ServiceEntry returns the i-th service entry window of an input buffer.
func ServiceEntry(buf []byte, i int) []byte {
	off := InputHeaderSize + i*ServiceEntryStride
	return buf[off : off+ServiceEntryStride]
}

// DecodeTaskEntry fills task from one raw entry. The three leading 32-bit
// fields decode verbatim, including enum values outside the known range.
// Text fields use truncating-copy semantics and the transient Selected
// flag is cleared. Decoding is a total replacement of the task's fields.
func DecodeTaskEntry(entry []byte, task *model.Task) {
	task.LegacyID = binary.LittleEndian.Uint32(entry[taskOffLegacyID:])
	task.Status = model.Status(binary.LittleEndian.Uint32(entry[taskOffStatus:]))
	task.Priority = model.Priority(binary.LittleEndian.Uint32(entry[taskOffPriority:]))

	task.ID.SetBytes(fixedField(entry, taskOffID, model.TaskIDCap))
	task.Title.SetBytes(fixedField(entry, taskOffTitle, model.TaskTitleCap))
	task.Description.SetBytes(fixedField(entry, taskOffDescription, model.TaskDescriptionCap))
	task.Category.SetBytes(fixedField(entry, taskOffCategory, model.TaskCategoryCap))
	task.ServiceName.SetBytes(fixedField(entry, taskOffServiceName, model.TaskServiceNameCap))
	task.DueDate.SetBytes(fixedField(entry, taskOffDueDate, model.TaskDueDateCap))
	task.AssignedTo.SetBytes(fixedField(entry, taskOffAssignedTo, model.TaskAssignedToCap))

	task.Selected = false
}

// DecodeServiceEntry fills service from one raw entry.
func DecodeServiceEntry(entry []byte, service *model.Service) {
	service.ID.SetBytes(fixedField(entry, serviceOffID, model.ServiceIDCap))
	service.Name.SetBytes(fixedField(entry, serviceOffName, model.ServiceNameCap))
}

// EncodeTaskEntry writes task into one raw entry, the exact mirror of
// DecodeTaskEntry. The entry is zero-filled first so every text field is
// NUL-terminated and the padding bytes are zero.
func EncodeTaskEntry(entry []byte, task *model.Task) {
	zeroFill(entry[:TaskEntryStride])

	binary.LittleEndian.PutUint32(entry[taskOffLegacyID:], task.LegacyID)
	binary.LittleEndian.PutUint32(entry[taskOffStatus:], uint32(task.Status))
	binary.LittleEndian.PutUint32(entry[taskOffPriority:], uint32(task.Priority))

	putField(entry, taskOffID, model.TaskIDCap, task.ID.String())
	putField(entry, taskOffTitle, model.TaskTitleCap, task.Title.String())
	putField(entry, taskOffDescription, model.TaskDescriptionCap, task.Description.String())
	putField(entry, taskOffCategory, model.TaskCategoryCap, task.Category.String())
	putField(entry, taskOffServiceName, model.TaskServiceNameCap, task.ServiceName.String())
	putField(entry, taskOffDueDate, model.TaskDueDateCap, task.DueDate.String())
	putField(entry, taskOffAssignedTo, model.TaskAssignedToCap, task.AssignedTo.String())
}

// EncodeServiceEntry writes service into one raw entry.
func EncodeServiceEntry(entry []byte, service *model.Service) {
	zeroFill(entry[:ServiceEntryStride])

	putField(entry, serviceOffID, model.ServiceIDCap, service.ID.String())
	putField(entry, serviceOffName, model.ServiceNameCap, service.Name.String())
}

// fixedField returns the contents of a fixed-width text field: the bytes
// up to the field's first NUL, or the whole declared width when no NUL
// appears in it. It never reads past the width.
func fixedField(entry []byte, off, width int) []byte {
	field := entry[off : off+width]
	for i, c := range field {
		if c == 0 {
			return field[:i]
		}
	}
	return field
}

// putField writes s into a fixed-width field, truncating at width-1 bytes
// so the terminator is always present. The field bytes must already be
// zero.
func putField(entry []byte, off, width int, s string) {
	if len(s) > width-1 {
		s = s[:width-1]
	}
	copy(entry[off:off+width], s)
}

func zeroFill(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
