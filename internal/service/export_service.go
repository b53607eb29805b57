package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/roqaia-shehab/Is-roqia/internal/timetable"
)

// ── 导出模块业务错误 ──

var (
	ErrExportEmpty        = errors.New("当前课表为空，无可导出内容")
	ErrExportGenerateFail = errors.New("生成导出文件失败")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 四种格式共用当前课表快照：CSV / JSON 面向数据交换，
//     XLSX 面向打印排版，ICS 面向日历订阅
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
//   - ICS 以本周周日为锚点生成按周重复事件
type ExportService interface {
	ExportCSV(ctx context.Context) (*bytes.Buffer, string, error)
	ExportJSON(ctx context.Context) (*bytes.Buffer, string, error)
	ExportXLSX(ctx context.Context) (*bytes.Buffer, string, error)
	ExportICS(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	timetableSvc TimetableService
	logger       *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(timetableSvc TimetableService, logger *zap.Logger) ExportService {
	return &exportService{timetableSvc: timetableSvc, logger: logger}
}

// snapshot 取当前课表条目，空表按无内容处理
func (s *exportService) snapshot(ctx context.Context) ([]timetable.Entry, error) {
	current, err := s.timetableSvc.Current(ctx)
	if err != nil {
		return nil, err
	}
	if len(current.Schedule) == 0 {
		return nil, ErrExportEmpty
	}
	return current.Schedule, nil
}

func (s *exportService) ExportCSV(ctx context.Context) (*bytes.Buffer, string, error) {
	entries, err := s.snapshot(ctx)
	if err != nil {
		return nil, "", err
	}

	buf := new(bytes.Buffer)
	w := csv.NewWriter(buf)

	header := []string{"Course ID", "Course Name", "Day", "Start Time", "End Time", "Room", "Instructor", "Course Type"}
	if err := w.Write(header); err != nil {
		return nil, "", ErrExportGenerateFail
	}
	for i := range entries {
		e := &entries[i]
		record := []string{
			e.CourseID, e.CourseName, e.Day,
			e.StartTime, e.EndTime,
			e.RoomID, e.InstructorName, e.CourseType,
		}
		if err := w.Write(record); err != nil {
			return nil, "", ErrExportGenerateFail
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		s.logger.Error("写入 CSV 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}
	return buf, "timetable.csv", nil
}

func (s *exportService) ExportJSON(ctx context.Context) (*bytes.Buffer, string, error) {
	current, err := s.timetableSvc.Current(ctx)
	if err != nil {
		return nil, "", err
	}
	if len(current.Schedule) == 0 {
		return nil, "", ErrExportEmpty
	}

	data, err := json.MarshalIndent(current, "", "  ")
	if err != nil {
		s.logger.Error("序列化 JSON 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}
	return bytes.NewBuffer(data), "timetable.json", nil
}

// ═══════════════════════════════════════════════════════════
// ExportXLSX — 导出课表为 Excel
// ═══════════════════════════════════════════════════════════
//
// 输出格式：
//   - 单 Sheet "Timetable"
//   - 行序：周天（周日 → 周四）内按时间段次序，即投影展示顺序
//   - 列：Day | Time | Course ID | Course Name | Type | Section | Room | Instructor

func (s *exportService) ExportXLSX(ctx context.Context) (*bytes.Buffer, string, error) {
	entries, err := s.snapshot(ctx)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Timetable"
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	// 列宽
	widths := map[string]float64{"A": 12, "B": 20, "C": 12, "D": 28, "E": 14, "F": 10, "G": 10, "H": 22}
	for col, w := range widths {
		f.SetColWidth(sheetName, col, col, w)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	headers := []string{"Day", "Time", "Course ID", "Course Name", "Type", "Section", "Room", "Instructor"}
	for i, h := range headers {
		f.SetCellValue(sheetName, cell(colName(i), 1), h)
	}
	f.SetCellStyle(sheetName, "A1", cell(colName(len(headers)-1), 1), headerStyle)

	// 数据行：按投影顺序（周天 → 时间段 → 插入序）展开
	row := 2
	for _, day := range timetable.Project(entries) {
		for _, slot := range day.Slots {
			for _, pe := range slot.Entries {
				f.SetCellValue(sheetName, cell("A", row), day.Day)
				f.SetCellValue(sheetName, cell("B", row), slot.Label)
				f.SetCellValue(sheetName, cell("C", row), pe.Entry.CourseID)
				f.SetCellValue(sheetName, cell("D", row), pe.Entry.CourseName)
				f.SetCellValue(sheetName, cell("E", row), pe.DisplayType)
				f.SetCellValue(sheetName, cell("F", row), pe.Entry.SectionID)
				f.SetCellValue(sheetName, cell("G", row), pe.Entry.RoomID)
				f.SetCellValue(sheetName, cell("H", row), pe.Entry.InstructorName)
				row++
			}
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}
	return buf, "timetable.xlsx", nil
}

// ═══════════════════════════════════════════════════════════
// ExportICS — 导出课表为 iCalendar
// ═══════════════════════════════════════════════════════════
//
// 每个条目生成一个 FREQ=WEEKLY 的 VEVENT，锚定在本周对应周天。
// 时间解析失败的条目跳过（不中断整体导出）。

const icsTimeLayout = "3:04 PM"

var icsDayOffset = map[string]int{
	"Sunday": 0, "Monday": 1, "Tuesday": 2, "Wednesday": 3, "Thursday": 4,
}

func (s *exportService) ExportICS(ctx context.Context) (*bytes.Buffer, string, error) {
	entries, err := s.snapshot(ctx)
	if err != nil {
		return nil, "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//TimetableAI//Weekly Timetable//EN")

	now := time.Now()
	// 本周周日 00:00
	weekStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, -int(now.Weekday()))

	added := 0
	for i := range entries {
		e := &entries[i]
		offset, ok := icsDayOffset[e.Day]
		if !ok {
			continue
		}
		start, err := time.Parse(icsTimeLayout, e.StartTime)
		if err != nil {
			s.logger.Warn("跳过时间格式非法的条目",
				zap.String("entry_id", string(timetable.ComputeEntryID(e))),
				zap.String("start_time", e.StartTime),
			)
			continue
		}
		end, err := time.Parse(icsTimeLayout, e.EndTime)
		if err != nil {
			end = start.Add(90 * time.Minute)
		}

		day := weekStart.AddDate(0, 0, offset)
		startAt := day.Add(time.Duration(start.Hour())*time.Hour + time.Duration(start.Minute())*time.Minute)
		endAt := day.Add(time.Duration(end.Hour())*time.Hour + time.Duration(end.Minute())*time.Minute)
		if !endAt.After(startAt) {
			endAt = startAt.Add(90 * time.Minute)
		}

		event := cal.AddEvent(fmt.Sprintf("%s@timetable-ai", timetable.ComputeEntryID(e)))
		event.SetCreatedTime(now)
		event.SetDtStampTime(now)
		event.SetStartAt(startAt)
		event.SetEndAt(endAt)
		event.SetSummary(fmt.Sprintf("%s — %s", e.CourseID, e.CourseName))
		event.SetLocation(e.RoomID)
		event.SetDescription(fmt.Sprintf("%s | %s | %s", timetable.DisplayType(e), e.SectionID, e.InstructorName))
		event.AddRrule("FREQ=WEEKLY")
		added++
	}

	if added == 0 {
		return nil, "", ErrExportEmpty
	}

	buf := bytes.NewBufferString(cal.Serialize())
	return buf, "timetable.ics", nil
}

// ── 辅助函数 ──

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
