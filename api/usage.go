package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"chatbridge/config"
	"chatbridge/database"
	"chatbridge/middleware"
	"chatbridge/models"
	"chatbridge/service"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// UsageHandler 使用日志处理器
type UsageHandler struct {
	emailService *service.EmailService
}

// NewUsageHandler 创建使用日志处理器
func NewUsageHandler(cfg *config.Config) *UsageHandler {
	return &UsageHandler{
		emailService: service.NewEmailService(&cfg.Email),
	}
}

// userKeyIDs 查询当前用户名下的全部密钥ID（含已停用）
func userKeyIDs(c *gin.Context) []uint {
	var ids []uint
	_ = database.DB.Model(&models.ApiKey{}).
		Where("user_id = ?", middleware.GetCurrentUserID(c)).
		Pluck("id", &ids).Error
	return ids
}

// List 获取使用日志（分页）
// @Summary 获取使用日志
// @Description 分页返回当前用户名下密钥的使用日志，可按密钥过滤
// @Tags 使用日志
// @Produce json
// @Security BearerAuth
// @Param api_key_id query int false "按密钥ID过滤"
// @Param page query int false "页码，默认1"
// @Param page_size query int false "每页条数，默认20，最大100"
// @Success 200 {object} Response{data=PageResponse} "获取成功"
// @Router /api/v1/usage-logs [get]
func (h *UsageHandler) List(c *gin.Context) {
	page := 1
	pageSize := 20
	if p := c.Query("page"); p != "" {
		if v, e := strconv.Atoi(p); e == nil && v > 0 {
			page = v
		}
	}
	if ps := c.Query("page_size"); ps != "" {
		if v, e := strconv.Atoi(ps); e == nil && v > 0 {
			pageSize = v
		}
	}
	if pageSize > 100 {
		pageSize = 100
	}

	query := database.DB.Model(&models.UsageLog{}).Where("api_key_id IN ?", userKeyIDs(c))
	if keyIDStr := c.Query("api_key_id"); keyIDStr != "" {
		keyID, err := strconv.ParseUint(keyIDStr, 10, 32)
		if err != nil {
			BadRequest(c, "无效的 api_key_id")
			return
		}
		query = query.Where("api_key_id = ?", uint(keyID))
	}

	var total int64
	query.Count(&total)

	var list []models.UsageLog
	offset := (page - 1) * pageSize
	if err := query.Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&list).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	Success(c, PageResponse{
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		List:     list,
	})
}

// parseDateRange 解析导出的时间范围参数
func parseDateRange(c *gin.Context) (time.Time, time.Time, string, string, bool) {
	startStr := c.Query("start_time")
	endStr := c.Query("end_time")
	if startStr == "" || endStr == "" {
		BadRequest(c, "请提供开始时间和结束时间")
		return time.Time{}, time.Time{}, "", "", false
	}

	start, err := time.ParseInLocation("2006-01-02", startStr, time.Local)
	if err != nil {
		BadRequest(c, "开始时间格式错误，应为: 2006-01-02")
		return time.Time{}, time.Time{}, "", "", false
	}
	end, err := time.ParseInLocation("2006-01-02", endStr, time.Local)
	if err != nil {
		BadRequest(c, "结束时间格式错误，应为: 2006-01-02")
		return time.Time{}, time.Time{}, "", "", false
	}
	end = end.Add(24*time.Hour - time.Second)
	return start, end, startStr, endStr, true
}

// queryLogs 按时间范围查询当前用户的使用日志
func (h *UsageHandler) queryLogs(c *gin.Context, start, end time.Time) ([]models.UsageLog, error) {
	var logs []models.UsageLog
	err := database.DB.
		Where("api_key_id IN ? AND created_at >= ? AND created_at <= ?", userKeyIDs(c), start, end).
		Order("created_at DESC").
		Find(&logs).Error
	return logs, err
}

// ExportCSV 导出使用日志为 CSV
// @Summary 导出使用日志 CSV
// @Description 根据时间范围导出使用日志为 CSV 文件
// @Tags 使用日志
// @Produce text/csv
// @Security BearerAuth
// @Param start_time query string true "开始时间 (2024-01-01)"
// @Param end_time query string true "结束时间 (2024-12-31)"
// @Success 200 {file} file "CSV 文件"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/usage-logs/export/csv [get]
func (h *UsageHandler) ExportCSV(c *gin.Context) {
	start, end, startStr, endStr, ok := parseDateRange(c)
	if !ok {
		return
	}

	logs, err := h.queryLogs(c, start, end)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询数据失败"))
		return
	}

	// 生成 CSV
	buf := new(bytes.Buffer)
	// 添加 BOM 以支持 Excel 中文显示
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)

	// 写入表头
	headers := []string{"ID", "密钥ID", "事件类型", "事件内容", "时间"}
	if err := writer.Write(headers); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	// 写入数据
	for _, item := range logs {
		row := []string{
			fmt.Sprintf("%d", item.ID),
			fmt.Sprintf("%d", item.APIKeyID),
			item.EventType,
			item.Payload,
			item.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := writer.Write(row); err != nil {
			InternalError(c, "生成 CSV 失败")
			return
		}
	}
	writer.Flush()

	filename := fmt.Sprintf("usage_logs_%s_%s.csv", startStr, endStr)
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

// ExportExcel 导出使用日志为 Excel
// @Summary 导出使用日志 Excel
// @Description 根据时间范围导出使用日志为 xlsx 文件
// @Tags 使用日志
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param start_time query string true "开始时间 (2024-01-01)"
// @Param end_time query string true "结束时间 (2024-12-31)"
// @Success 200 {file} file "Excel 文件"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/usage-logs/export/excel [get]
func (h *UsageHandler) ExportExcel(c *gin.Context) {
	start, end, startStr, endStr, ok := parseDateRange(c)
	if !ok {
		return
	}

	logs, err := h.queryLogs(c, start, end)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询数据失败"))
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "使用日志"
	f.SetSheetName("Sheet1", sheetName)

	// 设置表头样式
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	// 数据样式
	dataStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	// 设置列宽
	f.SetColWidth(sheetName, "A", "A", 10)
	f.SetColWidth(sheetName, "B", "B", 12)
	f.SetColWidth(sheetName, "C", "C", 18)
	f.SetColWidth(sheetName, "D", "D", 40)
	f.SetColWidth(sheetName, "E", "E", 20)

	// 写入表头
	headers := []string{"ID", "密钥ID", "事件类型", "事件内容", "时间"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	// 写入数据
	for i, item := range logs {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), item.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), item.APIKeyID)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), item.EventType)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), item.Payload)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), item.CreatedAt.Format("2006-01-02 15:04:05"))

		// 设置数据样式
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("E%d", row), dataStyle)
	}

	// 设置响应头
	filename := fmt.Sprintf("usage_logs_%s_%s.xlsx", startStr, endStr)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename*=UTF-8''%s", filename))

	// 写入响应
	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "生成 Excel 失败")
		return
	}
}

// SendReportRequest 发送使用报告请求
type SendReportRequest struct {
	Email     string `json:"email" binding:"required,email"`
	StartTime string `json:"start_time" binding:"required" example:"2024-01-01"`
	EndTime   string `json:"end_time" binding:"required" example:"2024-12-31"`
}

// SendReport 发送使用报告邮件
// @Summary 发送使用报告邮件
// @Description 统计时间范围内的对话次数并以邮件发送给指定收件人
// @Tags 使用日志
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SendReportRequest true "报告请求"
// @Success 200 {object} Response "发送成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 500 {object} Response "发送失败"
// @Router /api/v1/usage-logs/send-report [post]
func (h *UsageHandler) SendReport(c *gin.Context) {
	var req SendReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	start, err := time.ParseInLocation("2006-01-02", req.StartTime, time.Local)
	if err != nil {
		BadRequest(c, "开始时间格式错误，应为: 2006-01-02")
		return
	}
	end, err := time.ParseInLocation("2006-01-02", req.EndTime, time.Local)
	if err != nil {
		BadRequest(c, "结束时间格式错误，应为: 2006-01-02")
		return
	}
	end = end.Add(24*time.Hour - time.Second)

	keyIDs := userKeyIDs(c)

	var totalChats int64
	database.DB.Model(&models.UsageLog{}).
		Where("api_key_id IN ? AND created_at >= ? AND created_at <= ?", keyIDs, start, end).
		Count(&totalChats)

	// 统计最活跃密钥
	var top struct {
		APIKeyID uint
		Cnt      int64
	}
	topKey := "-"
	if err := database.DB.Model(&models.UsageLog{}).
		Select("api_key_id, COUNT(*) as cnt").
		Where("api_key_id IN ? AND created_at >= ? AND created_at <= ?", keyIDs, start, end).
		Group("api_key_id").
		Order("cnt DESC").
		Limit(1).
		Scan(&top).Error; err == nil && top.APIKeyID > 0 {
		topKey = fmt.Sprintf("#%d", top.APIKeyID)
	}

	report := service.UsageReport{
		StartDate:    req.StartTime,
		EndDate:      req.EndTime,
		TotalChats:   totalChats,
		TotalKeys:    int64(len(keyIDs)),
		ActiveTopKey: topKey,
	}

	if err := h.emailService.SendUsageReportEmail(req.Email, report); err != nil {
		InternalError(c, SafeErrorMessage(err, "发送报告失败"))
		return
	}

	SuccessWithMessage(c, "报告已发送", nil)
}
