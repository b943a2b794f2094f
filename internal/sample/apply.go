package sample

import (
	"log"

	"github.com/taskdeck/task-tracker/internal/boundary"
	"github.com/taskdeck/task-tracker/internal/model"
	"github.com/taskdeck/task-tracker/internal/wire"
)

// Apply encodes the document's tasks and services through the app's
// input buffers, decodes them into the entity store, and installs the
// document's user name when one is set. Entries past the fixed table
// capacities are dropped with a log line. Returns the installed counts.
func (d *Document) Apply(app *boundary.App) (taskCount, serviceCount int) {
	tasks := d.Tasks
	if len(tasks) > model.MaxTasks {
		log.Printf("Document has %d tasks, keeping the first %d", len(tasks), model.MaxTasks)
		tasks = tasks[:model.MaxTasks]
	}
	services := d.Services
	if len(services) > model.MaxServices {
		log.Printf("Document has %d services, keeping the first %d", len(services), model.MaxServices)
		services = services[:model.MaxServices]
	}

	task := model.NewTask()
	for i := range tasks {
		fillTask(&task, &tasks[i])
		wire.EncodeTaskEntry(wire.TaskEntry(app.TaskInputBuffer(), i), &task)
	}
	app.DecodeTasks(len(tasks))

	service := model.NewService()
	for i := range services {
		service.ID.Set(services[i].ID)
		service.Name.Set(services[i].Name)
		wire.EncodeServiceEntry(wire.ServiceEntry(app.ServiceInputBuffer(), i), &service)
	}
	app.DecodeServices(len(services))

	if d.User != "" {
		app.Store().SetCurrentUser(d.User)
	}

	return len(tasks), len(services)
}

// fillTask copies one document task into a wire-capacity model task
func fillTask(dst *model.Task, src *Task) {
	dst.LegacyID = src.LegacyID
	dst.Status = model.Status(src.Status)
	dst.Priority = model.Priority(src.Priority)
	dst.ID.Set(src.ID)
	dst.Title.Set(src.Title)
	dst.Description.Set(src.Description)
	dst.Category.Set(src.Category)
	dst.ServiceName.Set(src.Service)
	dst.DueDate.Set(src.DueDate)
	dst.AssignedTo.Set(src.AssignedTo)
}
