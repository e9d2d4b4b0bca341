package api

import "github.com/gin-gonic/gin"

// Error kinds, machine-readable. The display message stays a localized
// human string; clients branch on the kind, people read the message.
const (
	kindValidation = "validation"
	kindAuth       = "auth"
	kindStorage    = "storage"
)

// Display messages, Thai as in the deployments this replaces.
const (
	msgMissingFields  = "กรุณากรอกข้อมูลให้ครบถ้วน"
	msgDuplicatePhone = "เบอร์โทรนี้ถูกใช้งานแล้ว"
	msgRegistered     = "สมัครสมาชิกสำเร็จ"
	msgUserNotFound   = "ไม่พบข้อมูลผู้ใช้"
	msgBadPassword    = "รหัสผ่านไม่ถูกต้อง"
	msgAdminLogin     = "ชื่อผู้ใช้หรือรหัสผ่านไม่ถูกต้อง"
	msgBookingCreated = "จองคิวสำเร็จ"
	msgBookingUpdated = "อัปเดตข้อมูลสำเร็จ"
	msgStatusUpdated  = "อัปเดตสถานะสำเร็จ"
	msgBookingDeleted = "ลบข้อมูลสำเร็จ"
)

// fail writes the uniform error body.
func fail(c *gin.Context, code int, kind, msg string) {
	c.JSON(code, gin.H{"error": kind, "message": msg})
}
